// Package registry provides live-resource accounting for scopes.
//
// A Table maps integer handles to resources that are currently registered
// in some scope but not yet destroyed. Attaching a table to a scope (via
// scope.WithTable) makes the scope report every registration and every
// destruction, so a host can audit what is alive at any moment.
//
// # Handle Table
//
//	table := registry.NewTable()
//
//	// Record a live resource, get a handle
//	handle := table.Insert(scopeID, "*os.File", f)
//
//	// Look up what is behind a handle
//	entry, ok := table.Get(handle)
//
//	// Retire a resource when its scope destroys it
//	entry, ok := table.Remove(handle)
//
// # Observers
//
// Register observers to track resource lifecycle events:
//
//	table.Subscribe(registry.ObserverFunc(func(event registry.Event) {
//	    switch event.Type {
//	    case registry.EventRegistered:
//	        log.Printf("resource %d registered", event.Handle)
//	    case registry.EventDestroyed:
//	        log.Printf("resource %d destroyed", event.Handle)
//	    }
//	}))
//
// # Leak Accounting
//
// Entries still present when Close is called represent resources that were
// registered but never destroyed. Close reports each one to observers as
// EventLeaked before clearing the table. In a correct program the table is
// empty whenever no scope is active, so leak events point directly at
// escaped or double-registered resources.
package registry
