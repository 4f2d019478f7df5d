package runner

import "strings"

// Fake is a scriptable Runner for tests. It records every command line it
// receives and replies with the scripted response for that exact line, or
// empty success when none is scripted.
type Fake struct {
	Calls     []string
	Responses map[string]FakeResponse
}

// FakeResponse is the scripted result for one command line
type FakeResponse struct {
	Output string
	Err    error
}

// Run records the call and returns the scripted response
func (f *Fake) Run(name string, args ...string) (string, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.Calls = append(f.Calls, line)

	if r, ok := f.Responses[line]; ok {
		return r.Output, r.Err
	}

	return "", nil
}

// Output behaves exactly like Run; the fake does not separate streams
func (f *Fake) Output(name string, args ...string) (string, error) {
	return f.Run(name, args...)
}

// Count returns how many recorded calls start with prefix
func (f *Fake) Count(prefix string) int {
	n := 0
	for _, c := range f.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}
