package commands

const (
	// warningListDirectoryFormat is used when a directory cannot be listed.
	warningListDirectoryFormat = "Warning: treating %s as empty: %v"
	// warningReadFileFormat is used when a file's content is replaced by an error marker.
	warningReadFileFormat = "Warning: failed to read %s: %v"
	// WarningTokenCountFormat is used when token estimation fails for a file.
	WarningTokenCountFormat = "Warning: failed to count tokens for %s: %v"

	errorCreateOutputFormat = "creating output file %s: %w"
	errorWriteOutputFormat  = "writing output file %s: %w"
	errorCloseOutputFormat  = "closing output file %s: %w"
	errorStreamTreeFormat   = "rendering tree for %s: %w"
	errorStreamFilesFormat  = "dumping contents for %s: %w"
)
