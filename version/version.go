package version

// Version is set at build time with -ldflags "-X github.com/imagespy/driverimages/version.Version=...".
var Version = "dev"
