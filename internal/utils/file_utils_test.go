package utils

import (
	"strings"
	"testing"
	"time"

	"rec-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "ক্রমিক_নং", NormalizeHeader("ক্রমিক নং"))
	assert.Equal(t, "পিতার_নাম", NormalizeHeader(utf8BOM+"  পিতার   নাম "))
	assert.Equal(t, "নাম", NormalizeHeader("নাম"))
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, "text/csv", DetectContentType("a.CSV", nil))
	assert.Equal(t, "application/x-jsonlines", DetectContentType("a.jsonl", nil))
	assert.Equal(t, "application/json", DetectContentType("a.json", nil))
	assert.Equal(t, "application/json", DetectContentType("upload", []byte(" [{}]")))
	assert.Equal(t, "application/x-jsonlines", DetectContentType("upload", []byte(`{"a":1}`)))
	assert.Equal(t, "text/csv", DetectContentType("upload", []byte("a,b")))
}

func TestParseCSV(t *testing.T) {
	data := utf8BOM + "ক্রমিক নং,নাম\n" +
		"1, রহিম \n" +
		"\n" +
		",\n" +
		"2,করিম,extra\n" +
		"3\n"

	rows, err := ParseCSV([]byte(data))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Row{"ক্রমিক_নং": "1", "নাম": "রহিম"}, rows[0])
	assert.Equal(t, Row{"ক্রমিক_নং": "2", "নাম": "করিম"}, rows[1])
	assert.Equal(t, Row{"ক্রমিক_নং": "3"}, rows[2])

	empty, err := ParseCSV(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParseJSONL(t *testing.T) {
	data := `{"নাম": "রহিম", "ক্রমিক নং": 12}` + "\n\n" + `{"নাম": null}` + "\n"

	rows, err := ParseJSONL([]byte(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{"নাম": "রহিম", "ক্রমিক_নং": "12"}, rows[0])
	assert.Empty(t, rows[1])

	_, err = ParseJSONL([]byte("{bad"))
	assert.Error(t, err)
}

func TestParseRows_JSONArray(t *testing.T) {
	rows, err := ParseRows("x.json", []byte(`[{"পেশা": "চাকরি"}, {"পেশা": true}]`))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "চাকরি", rows[0]["পেশা"])
	assert.Equal(t, "true", rows[1]["পেশা"])
}

func TestConvertRecordsToCSV(t *testing.T) {
	name := "রহিম, উদ্দিন"
	records := []models.Record{{
		ID:                 7,
		Name:               &name,
		BatchName:          "ঢাকা",
		FileName:           "a.csv",
		RelationshipStatus: models.StatusFriend,
		CreatedAt:          time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}}

	data, err := ConvertRecordsToCSV(records)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, utf8BOM))

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(text, utf8BOM)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,"+strings.Join(models.RecordFields, ",")+",batch_name,file_name,relationship_status,created_at", lines[0])
	assert.Equal(t, `7,,"রহিম, উদ্দিন",,,,,,,ঢাকা,a.csv,Friend,2024-03-01 10:00:00`, lines[1])

	// 导出的CSV可以重新导入
	rows, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, name, rows[0][models.FieldName])
}
