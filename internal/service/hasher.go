package service

import "artigos-api/internal/worker"

// Hasher routes password hashing through a worker pool so the bcrypt
// cost parameter cannot saturate the process: at most pool-size hash
// operations run at once while unrelated requests keep going.
type Hasher struct {
	pool worker.Pool
}

func NewHasher(pool worker.Pool) *Hasher {
	return &Hasher{pool: pool}
}

func (h *Hasher) Hash(password string) (string, error) {
	var (
		hash string
		err  error
	)
	h.pool.Do(func() {
		hash, err = HashPassword(password)
	})
	return hash, err
}
