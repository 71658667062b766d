// Package store provides file-based persistence for toolbox modules.
//
// Everything a module keeps lives as JSON inside its data folder. The package
// includes:
//   - LoadOrInit, the config-or-default loader
//   - ResultWriter, which overwrites or appends result records
//   - SealJSON/OpenJSON, a passphrase envelope for modules that keep private data
//
// Writes go through a temp file and rename so a crash never leaves a
// half-written file behind. A missing file is never an error on read.
package store
