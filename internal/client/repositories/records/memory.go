package records

import "context"

// MemoryRepository keeps records in a map for the life of the process.
type MemoryRepository struct {
	data map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	r.data[key] = stored
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	delete(r.data, key)
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, key string, fn UpdateFunc) error {
	current, _ := r.Get(ctx, key)
	next, err := fn(current)
	if err != nil {
		return err
	}
	return r.Set(ctx, key, next)
}
