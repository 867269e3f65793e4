package storage

// Store is the durable key-to-string map backing session state, the client
// analogue of browser local storage.
type Store interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
	Remove(key string) error
}
