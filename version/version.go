package version

// mainpkg identifies the module path the wyag binary is built from.
var mainpkg = "github.com/levijpuckett/wyag"

// version is the release this build corresponds to. It is bumped by hand
// ahead of a tag and carries a "+unknown" suffix otherwise; -ldflags
// overrides it at build time with the real tag.
var version = "v0.1.0+unknown"

// revision holds the VCS commit the binary was built from, set at link
// time via -ldflags. Left blank in untagged development builds.
var revision = ""
