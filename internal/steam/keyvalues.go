package steam

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/andygrunwald/vdf"
)

// parseKeyValues decodes Valve's KeyValues text format (.vdf, .acf).
func parseKeyValues(data []byte) (map[string]interface{}, error) {
	p := vdf.NewParser(bytes.NewReader(bytes.ToValidUTF8(data, nil)))
	kv, err := p.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse keyvalues: %w", err)
	}
	return kv, nil
}

// lookup finds key case-insensitively; Steam is not consistent about
// "LibraryFolders" vs "libraryfolders".
func lookup(kv map[string]interface{}, key string) (interface{}, bool) {
	if v, ok := kv[key]; ok {
		return v, true
	}
	for k, v := range kv {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

func lookupString(kv map[string]interface{}, key string) string {
	v, ok := lookup(kv, key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// orderedKeys returns numeric keys in numeric order followed by the rest
// alphabetically, which recovers file order for library sections.
func orderedKeys(kv map[string]interface{}) []string {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, errI := strconv.Atoi(keys[i])
		nj, errJ := strconv.Atoi(keys[j])
		switch {
		case errI == nil && errJ == nil:
			return ni < nj
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

func isNumeric(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
