package receive

import "context"

// Cache - долговременное key-value хранилище: один именованный слот
// со всем списком записей в виде JSON-массива.
type Cache interface {
	// Load возвращает содержимое слота или nil, nil если слот пуст
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// SeedSource - источник начального набора данных
type SeedSource interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}
