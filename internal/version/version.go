package version

// Version is overridden at build time with -ldflags "-X pephom/internal/version.Version=...".
var Version = "0.1.0"
