package skill

import (
	"bytes"
	"encoding/json"
)

type entry struct {
	key    string
	skills []string
}

// Catalog maps category keys to skill names and remembers insertion order,
// so it serialises as a JSON object whose keys follow display order.
type Catalog struct {
	entries []entry
	index   map[string]int
}

func NewCatalog() *Catalog {
	return &Catalog{index: map[string]int{}}
}

// Set stores skills under key. Re-setting an existing key replaces its
// value but keeps its original position.
func (c *Catalog) Set(key string, skills []string) {
	if skills == nil {
		skills = []string{}
	}
	if i, ok := c.index[key]; ok {
		c.entries[i].skills = skills
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, entry{key: key, skills: skills})
}

func (c *Catalog) Get(key string) ([]string, bool) {
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.entries[i].skills, true
}

func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.key
	}
	return keys
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.skills)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
