// Package memory provides the in-memory implementation of the data storage
// interfaces (repositories) defined in the internal/store package. Records
// live only for the lifetime of the process; there is no durability and no
// multi-instance coordination. A single mutex guards the collections purely
// to protect against incidental concurrent access from the HTTP host.
package memory
