package domain

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultAdminBase is the admin API prefix used by presets.
const DefaultAdminBase = "/api/admin"

// PresetFunc builds field options for an admin entity rooted at baseURL.
type PresetFunc func(baseURL string) FieldOptions

var presets = map[string]PresetFunc{
	"account": func(base string) FieldOptions {
		o := DefaultFieldOptions()
		o.APIURL = base + "/accounts"
		o.Placeholder = "搜索账户..."
		o.FormatItem = func(r RawRecord) SearchItem {
			return SearchItem{ID: r.String("id"), Name: r.First("remark", "accountNo", "id"), Record: r}
		}
		return o
	},
	"domain": func(base string) FieldOptions {
		o := DefaultFieldOptions()
		o.APIURL = base + "/domains"
		o.Placeholder = "搜索域名..."
		o.FormatItem = func(r RawRecord) SearchItem {
			return SearchItem{ID: r.String("id"), Name: r.First("domain", "id"), Record: r}
		}
		return o
	},
	"server": func(base string) FieldOptions {
		o := DefaultFieldOptions()
		o.APIURL = base + "/servers"
		o.Placeholder = "搜索服务器..."
		o.FormatItem = func(r RawRecord) SearchItem {
			name := r.String("ip")
			if n := r.String("name"); n != "" {
				name = fmt.Sprintf("%s (%s)", name, n)
			}
			return SearchItem{ID: r.String("id"), Name: name, Record: r}
		}
		return o
	},
	"user": func(base string) FieldOptions {
		o := DefaultFieldOptions()
		o.APIURL = base + "/users"
		o.Placeholder = "搜索用户..."
		o.FormatItem = func(r RawRecord) SearchItem {
			name := r.First("email", "id")
			if nick := r.String("nickName"); nick != "" {
				name = fmt.Sprintf("%s (%s)", name, nick)
			}
			return SearchItem{ID: r.String("id"), Name: name, Record: r}
		}
		return o
	},
	"node": func(base string) FieldOptions {
		o := DefaultFieldOptions()
		o.APIURL = base + "/nodes"
		o.Placeholder = "搜索节点..."
		o.FormatItem = func(r RawRecord) SearchItem {
			name := r.String("name")
			if name == "" && r.String("serverHost") != "" {
				name = r.String("serverHost") + ":" + r.String("port")
			}
			if name == "" {
				name = r.String("id")
			}
			return SearchItem{ID: r.String("id"), Name: name, Record: r}
		}
		return o
	},
	"tag": func(base string) FieldOptions {
		o := DefaultFieldOptions()
		o.APIURL = base + "/tags"
		o.Placeholder = "搜索标签..."
		o.FormatItem = func(r RawRecord) SearchItem {
			return SearchItem{ID: r.String("id"), Name: r.First("name", "id"), Record: r}
		}
		return o
	},
}

// Preset returns options for the named admin entity.
// An empty baseURL uses DefaultAdminBase.
func Preset(name, baseURL string) (FieldOptions, error) {
	fn, ok := presets[strings.ToLower(name)]
	if !ok {
		return FieldOptions{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	if baseURL == "" {
		baseURL = DefaultAdminBase
	}
	return fn(strings.TrimRight(baseURL, "/")), nil
}

// PresetNames returns the registered preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
