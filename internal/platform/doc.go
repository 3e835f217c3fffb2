package platform

// Package platform contains OS integration glue: filesystem helpers,
// Downloads directory resolution, and opening folders in the system file
// manager.
