package titles

import (
	"sort"
	"strings"
)

// Placeholder はタイトルが見つからなかった曲に使う仮タイトルです
const Placeholder = "Title goes here"

// Table は曲IDからタイトル一覧（先頭がメイン、2番目が別名）への対応表です
type Table map[string][]string

// placeholderPair は仮タイトルのペアを返します
func placeholderPair() []string {
	return []string{Placeholder, Placeholder}
}

// Pair は曲IDのメインタイトルと別名タイトルを返します
// 見つからない場合は仮タイトル、1件しかない場合は同じタイトルを2つ返します
func (t Table) Pair(id string) (string, string) {
	list := t[strings.ToLower(id)]
	switch len(list) {
	case 0:
		return Placeholder, Placeholder
	case 1:
		return list[0], list[0]
	}
	return list[0], list[1]
}

// Filter は ids に含まれる曲IDだけを残した新しい表を返します
func (t Table) Filter(ids []string) Table {
	out := make(Table, len(ids))
	for _, id := range ids {
		id = strings.ToLower(id)
		if list, ok := t[id]; ok {
			out[id] = list
		}
	}
	return out
}

// Override は ids のうち manual に指定がある曲のタイトルを両方とも置き換えます
func (t Table) Override(manual map[string]string, ids []string) {
	if len(manual) == 0 {
		return
	}
	lowered := make(map[string]string, len(manual))
	for k, v := range manual {
		lowered[strings.ToLower(k)] = v
	}
	for _, id := range ids {
		id = strings.ToLower(id)
		if title, ok := lowered[id]; ok {
			t[id] = []string{title, title}
		}
	}
}

// Orphans はタイトルが仮タイトルのままの曲IDを昇順で返します
func (t Table) Orphans() []string {
	var orphans []string
	for id, list := range t {
		if len(list) == 0 || list[0] == Placeholder {
			orphans = append(orphans, id)
		}
	}
	sort.Strings(orphans)
	return orphans
}

// IDs は表に含まれる曲IDを昇順で返します
func (t Table) IDs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
