package platform

// Package platform contains OS/platform integration: filesystem helpers and
// the thumbnail resolver that looks images up in the bundled assets, next to
// the executable, and in the working directory.
