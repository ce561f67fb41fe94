package model

// Package model defines the destination data shown by the app and the
// immutable display rows built from it. Rows pair escaped markup with an
// already resolved thumbnail so the UI never touches the filesystem.
