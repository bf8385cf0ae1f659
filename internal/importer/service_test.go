package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupNameForRow(t *testing.T) {
	t.Run("named group wins", func(t *testing.T) {
		row := Row{Name: "Anna", Group: "Smith Family"}
		assert.Equal(t, "Smith Family", groupNameForRow(row))
	})

	t.Run("groupless rows land in the default group", func(t *testing.T) {
		row := Row{Name: "Anna"}
		assert.Equal(t, defaultGroupName, groupNameForRow(row))
	})
}
