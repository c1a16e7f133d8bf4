package mocks

// MockSourceFinder はSourceFinderのモック実装です
type MockSourceFinder struct {
	FoundFile string
	Error     error
	// Names は最後に渡された候補名
	Names []string
}

// Find はモック実装です
func (m *MockSourceFinder) Find(names []string) (string, error) {
	m.Names = names
	if m.Error != nil {
		return "", m.Error
	}
	return m.FoundFile, nil
}
