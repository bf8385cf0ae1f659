package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		input := strings.Join([]string{
			"name,phone,group,tags,invited_by",
			"Anna Smith,+111222,Smith Family,family;vip,alexx",
			"Bob Smith,,Smith Family,,Alex",
			"Dan,,,work,nobody",
		}, "\n")

		rows, skipped, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, 0, skipped)
		require.Len(t, rows, 3)

		assert.Equal(t, Row{
			Name:      "Anna Smith",
			Phone:     "+111222",
			Group:     "Smith Family",
			Tags:      []string{"family", "vip"},
			InvitedBy: []string{"alexx"},
		}, rows[0])

		assert.Empty(t, rows[1].Tags)
		assert.Equal(t, []string{"Alex"}, rows[1].InvitedBy)

		assert.Empty(t, rows[2].Group)
	})

	t.Run("columns in any order", func(t *testing.T) {
		input := "group,name\nSmith Family,Anna\n"

		rows, _, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Anna", rows[0].Name)
		assert.Equal(t, "Smith Family", rows[0].Group)
	})

	t.Run("unknown columns are ignored", func(t *testing.T) {
		input := "name,favorite_color\nAnna,blue\n"

		rows, _, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Anna", rows[0].Name)
	})

	t.Run("rows without a name are skipped", func(t *testing.T) {
		input := "name,phone\nAnna,+1\n,+2\nBob,+3\n"

		rows, skipped, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, 1, skipped)
		assert.Len(t, rows, 2)
	})

	t.Run("missing name column is an error", func(t *testing.T) {
		_, _, err := ParseCSV(strings.NewReader("phone,group\n+1,x\n"))
		assert.Error(t, err)
	})

	t.Run("empty list cells yield nil", func(t *testing.T) {
		input := "name,tags,invited_by\nAnna,; ;,\n"

		rows, _, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		assert.Empty(t, rows[0].Tags)
		assert.Empty(t, rows[0].InvitedBy)
	})
}
