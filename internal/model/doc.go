package model

// Package model defines domain data structures used across the app: screen
// identifiers, the tabular survey dataset, correlation samples and results,
// and notebook documents. Values are plain data and are never mutated after
// loading.
