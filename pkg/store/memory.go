package store

// Memory is an in-process Adapter for tests and throwaway sessions. Setting
// WriteErr makes every Write fail with it, leaving stored data untouched.
type Memory struct {
	WriteErr error

	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Read(key string) ([]byte, bool, error) {
	val, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return val, true, nil
}

func (m *Memory) Write(key string, data []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	m.data[key] = cp
	return nil
}
