package main

import (
	"context"
	"fmt"

	appcontext "github.com/SeakMengs/audiogram/internal/app_context"
	"github.com/SeakMengs/audiogram/internal/util"
	"github.com/SeakMengs/audiogram/pkg/audiogram"
)

// Uploads every output of the report under audiograms/<id>/.
func publishReport(ctx context.Context, app *appcontext.Application, report *audiogram.GeneratedReport) error {
	fuo := &util.FileUploadOptions{
		DirectoryPath: util.GetReportDirectoryPath(report.ID),
		Bucket:        app.Config.Minio.BUCKET,
		S3:            app.S3,
	}

	for _, f := range report.Files() {
		info, err := util.UploadFileToS3ByPath(ctx, f, fuo)
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", f, err)
		}
		app.Logger.Infof("Uploaded %s to %s/%s (%d bytes)", f, info.Bucket, info.Key, info.Size)
	}

	return nil
}
