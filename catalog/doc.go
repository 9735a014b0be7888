// Package catalog holds the in-memory index of a music tree.
//
// A Catalog is built once by a Builder walking a source directory. It carries
// one index per category (Artists, Genres, Years) mapping each tag value to the
// set of real files carrying it, and an alias table mapping every virtual path
//
//	/<Category>/<value>/<basename>
//
// to the TrackRecord of the real file. A track with N genres has N+2 aliases,
// all sharing one TrackRecord.
//
// The Catalog is never mutated after Build returns and may be shared by any
// number of goroutines without synchronization. Resolve classifies a virtual
// path against it into one of the node kinds the filesystem serves.
package catalog
