package dataset

// Package dataset reads the survey CSV into a model.Table and extracts the
// numeric correlation sample from it. Files are read fresh on every call.
