package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAliasConstructors(t *testing.T) {
	long := LongAlias("output")
	assert.Equal(t, AliasLong, long.Kind)
	assert.Equal(t, "output", long.Name)

	short := ShortAlias('o')
	assert.Equal(t, AliasShort, short.Kind)
	assert.Equal(t, 'o', short.Char)
}

func TestAliasString(t *testing.T) {
	assert.Equal(t, "--output", LongAlias("output").String())
	assert.Equal(t, "-o", ShortAlias('o').String())
}

func TestAliasLen(t *testing.T) {
	assert.Equal(t, 6, LongAlias("output").Len())
	assert.Equal(t, 1, ShortAlias('o').Len())
	// Multi-byte short counts its UTF-8 encoding.
	assert.Equal(t, 2, ShortAlias('ö').Len())
}

func TestAliasSpacesDisjoint(t *testing.T) {
	// A one-character long is not the short with the same character.
	long := LongAlias("o")
	short := ShortAlias('o')
	assert.NotEqual(t, long, short)
	assert.NotZero(t, long.Compare(short))
}

func TestAliasCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Alias
		want int
	}{
		{"equal longs", LongAlias("a"), LongAlias("a"), 0},
		{"equal shorts", ShortAlias('a'), ShortAlias('a'), 0},
		{"longs by spelling", LongAlias("a"), LongAlias("b"), -1},
		{"shorts by character", ShortAlias('b'), ShortAlias('a'), 1},
		{"longs before shorts", LongAlias("zzz"), ShortAlias('a'), -1},
		{"shorts after longs", ShortAlias('a'), LongAlias("zzz"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}

func TestAliasAsMapKey(t *testing.T) {
	m := map[Alias]int{
		LongAlias("o"):  1,
		ShortAlias('o'): 2,
	}
	assert.Equal(t, 1, m[LongAlias("o")])
	assert.Equal(t, 2, m[ShortAlias('o')])
}
