package practice

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportCSVAddsPractices(t *testing.T) {
	csv := "key,name,description,steps,duration\n" +
		"evening_stretch,🌙 Вечерняя растяжка,Мягкая растяжка перед сном,Наклон вперёд;Поза ребёнка,7\n"
	path := writeTempCSV(t, csv)

	c := Builtin()
	result, err := c.ImportFile(path)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalProcessed)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 0, result.Skipped)

	p, err := c.Get("evening_stretch")
	require.NoError(t, err)
	assert.Equal(t, "🌙 Вечерняя растяжка", p.Name)
	assert.Equal(t, []string{"Наклон вперёд", "Поза ребёнка"}, p.Steps)
	assert.Equal(t, 7, p.DurationMinutes)
	assert.Equal(t, "7 минут", p.Duration)
}

func TestImportCSVReplacesBuiltin(t *testing.T) {
	csv := "key,name,description,steps,duration\n" +
		"meditation,🧘 Медитация 2.0,Обновлённая версия,Шаг один,12\n"
	path := writeTempCSV(t, csv)

	c := Builtin()
	result, err := c.ImportFile(path)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Replaced)
	assert.Equal(t, 3, c.Len())

	p, err := c.Get("meditation")
	require.NoError(t, err)
	assert.Equal(t, 12, p.DurationMinutes)
}

func TestImportCSVSkipsBadRows(t *testing.T) {
	csv := "key,name,description,steps,duration\n" +
		",missing key,desc,steps,5\n" +
		"bad_duration,Name,desc,steps,abc\n" +
		"ok,Name,desc,step,5\n"
	path := writeTempCSV(t, csv)

	c := NewCatalog()
	result, err := c.ImportFile(path)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, result.Errors, 2)
	assert.Equal(t, 1, c.Len())
}

func TestImportMissingFile(t *testing.T) {
	c := NewCatalog()
	_, err := c.ImportFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
