package leads

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "slug,business_name,city,service,pain_point,offer\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leads.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadValidSource(t *testing.T) {
	path := writeCSV(t, header+
		"plumber-berlin,Rohr Frei GmbH,Berlin,Sanitär,zu wenige Anfragen,kostenloses Erstgespräch\n"+
		"baker-hamburg,Backstube Nord,Hamburg,Bäckerei,keine Online-Sichtbarkeit,Website in 7 Tagen\n")

	got, err := Read(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "plumber-berlin", got[0].Slug)
	assert.Equal(t, "Rohr Frei GmbH", got[0].BusinessName)
	assert.Equal(t, "Berlin", got[0].City)
	assert.Equal(t, "Sanitär", got[0].Service)
	assert.Equal(t, "zu wenige Anfragen", got[0].PainPoint)
	assert.Equal(t, "kostenloses Erstgespräch", got[0].Offer)
	assert.Equal(t, "baker-hamburg", got[1].Slug)
}

func TestReadTrimsFields(t *testing.T) {
	path := writeCSV(t, header+
		"  plumber-berlin , Rohr Frei GmbH , Berlin , Sanitär , zu wenige Anfragen , Erstgespräch \n")

	got, err := Read(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "plumber-berlin", got[0].Slug)
	assert.Equal(t, "Rohr Frei GmbH", got[0].BusinessName)
}

func TestReadBadHeaderFails(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"wrong column name", "slug,company,city,service,pain_point,offer\n"},
		{"missing column", "slug,business_name,city,service,pain_point\n"},
		{"extra column", "slug,business_name,city,service,pain_point,offer,notes\n"},
		{"reordered", "business_name,slug,city,service,pain_point,offer\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.header+"a,b,c,d,e,f\n")
			_, err := Read(path)
			require.ErrorIs(t, err, ErrHeader)
		})
	}
}

func TestReadSkipsIncompleteRows(t *testing.T) {
	path := writeCSV(t, header+
		"plumber-berlin,Rohr Frei GmbH,Berlin,Sanitär,zu wenige Anfragen,Erstgespräch\n"+
		"baker-hamburg,,Hamburg,Bäckerei,keine Sichtbarkeit,Website\n"+ // no business name
		"florist-koeln,Blumen Meyer,Köln,Floristik,,Angebot\n"+ // no pain point
		"roofer-essen,Dach & Co,Essen,Dachdecker,undichte Leads,Festpreis\n")

	got, err := Read(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "plumber-berlin", got[0].Slug)
	assert.Equal(t, "roofer-essen", got[1].Slug)
}

func TestReadSkipsUnsafeSlugs(t *testing.T) {
	path := writeCSV(t, header+
		"../escape,Evil Corp,Berlin,Sanitär,x,y\n"+
		"has space,Space Inc,Berlin,Sanitär,x,y\n"+
		"good-slug,Fine GmbH,Berlin,Sanitär,x,y\n")

	got, err := Read(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "good-slug", got[0].Slug)
}

func TestReadDuplicateSlugFirstWins(t *testing.T) {
	path := writeCSV(t, header+
		"plumber-berlin,First GmbH,Berlin,Sanitär,x,y\n"+
		"plumber-berlin,Second GmbH,Berlin,Sanitär,x,y\n")

	got, err := Read(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "First GmbH", got[0].BusinessName)
}

func TestReadQuotedFieldsWithCommas(t *testing.T) {
	path := writeCSV(t, header+
		`plumber-berlin,"Rohr, Frei & Co",Berlin,Sanitär,"zu wenige Anfragen, zu viel Papier",Erstgespräch`+"\n")

	got, err := Read(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rohr, Frei & Co", got[0].BusinessName)
	assert.Equal(t, "zu wenige Anfragen, zu viel Papier", got[0].PainPoint)
}

func TestReadMissingFileFails(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
