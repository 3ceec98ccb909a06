package util

// Object key prefix of a report in the bucket
func GetReportDirectoryPath(reportId string) string {
	return "audiograms/" + reportId
}
