// Package anchor resolves logical root locations for file factories.
//
// An Anchor identifies where a factory is rooted. It is resolved exactly
// once, when the owning factory is constructed, and yields an absolute
// directory path. Four kinds are provided:
//
//   - Dir: a filesystem path, with ~ expanded to the user's home directory
//   - Package: a name looked up in the process-wide registry filled by Register
//   - ConfigDir, DataDir, CacheDir: application directories under the XDG
//     base directories
//
// Parse interprets textual anchor references of the form "scheme:location",
// which is how manifests refer to anchors:
//
//	pkg:assets          -> Package("assets")
//	xdg-config:myapp    -> ConfigDir("myapp")
//	xdg-data:myapp      -> DataDir("myapp")
//	xdg-cache:myapp     -> CacheDir("myapp")
//	/srv/templates      -> Dir("/srv/templates")
//	~/notes             -> Dir("~/notes")
//
// Resolution checks that the target exists and is a directory through the
// provided afero.Fs, so factories backed by an in-memory filesystem resolve
// against that filesystem rather than the host's.
package anchor
