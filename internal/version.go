package internal

// Version is the ordkort release version, overridable at build time
// via -ldflags "-X codeberg.org/askov/ordkort/internal.Version=...".
var Version = "0.1.0"
