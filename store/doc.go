// Package store is the public API of ringlog. Most users only need
// to import this package.
//
// A Store keeps the N most recent log records (500 by default) in
// memory behind a spin lock, mirrors them to a console sink filtered
// by a verbosity threshold, optionally appends them to a file, and
// lets a consumer drain "everything since I last asked" through
// NewLogs. Stores are built explicitly:
//
//	log := store.NewBuilder().
//	    WithCapacity(1000).
//	    WithVerbosity(core.Warning).
//	    WithFile("/var/log/app.log").
//	    Build()
//	defer log.Close()
//
//	log.Message("engine started, ", workers, " workers")
//
// The package also maintains a default store so simple programs can
// log without setup via the package-level functions; SetDefault
// replaces it at startup for programs that want their own.
//
// Messages can be built incrementally with Append/SetPriority/Flush.
// Note that Flush drops the whole message when its priority is below
// the verbosity threshold, while Record always retains records in
// the history and only filters the console. Both behaviors are
// inherited from the facility this package replaces and are relied
// upon; see the method docs.
package store
