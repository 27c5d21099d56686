// Package relocator moves a classified file into its category folder.
//
// Organize never overwrites and never deletes. A file either ends up in
// dest_root/category under its own name (Moved), under the first free
// stem_N.ext name when a different file already holds that name (Renamed),
// stays put on purpose (Ignored), or stays put because something went wrong
// (Failed). The move itself is one rename.
//
// The per-file flow is a single pass with no retries:
//
//	Start -> Failed | Ignored (hidden)
//	Start -> FolderEnsured -> Failed (folder)
//	FolderEnsured -> CollisionCheck -> DirectMove  -> Moved | Failed
//	                                -> SameFile    -> Ignored
//	                                -> Disambiguate -> Renamed | Failed
//
// Category folders created before a later failure are left in place.
package relocator
