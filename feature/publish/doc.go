// Package publish uploads difference reports to S3-compatible object storage.
//
// The Service implements compare.Sink. After a run writes its report, the file
// is uploaded to "<prefix>/<run id>/<report file name>" in the configured
// bucket, which is created on first use. Published reports can be listed and
// downloaded again by run.
package publish
