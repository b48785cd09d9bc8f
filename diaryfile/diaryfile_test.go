package diaryfile

import (
	"strings"
	"testing"

	"github.com/fornellas/digitaldiary/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSingleTelephoneRow(t *testing.T) {
	csv := "kind,name,number,color\n" +
		"telephone,Jane Doe,555-1234,blue\n"

	groups, err := Load(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Records, 1)

	tel, ok := groups[0].Records[0].(record.Telephone)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", tel.Name)
	require.NotNil(t, tel.Number)
	assert.Equal(t, "555-1234", *tel.Number)
	require.NotNil(t, tel.Color)
}

func TestLoadGroupsContiguousRunsByKind(t *testing.T) {
	csv := "kind,name,text\n" +
		"telephone,A,\n" +
		"telephone,B,\n" +
		"memo,,hello\n" +
		"telephone,C,\n"

	groups, err := Load(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Len(t, groups[0].Records, 2)
	assert.Len(t, groups[1].Records, 1)
	assert.Len(t, groups[2].Records, 1)
}

func TestLoadRejectsMissingKindColumn(t *testing.T) {
	csv := "name\nJane Doe\n"
	_, err := Load(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	csv := "kind,name\nfax,Jane Doe\n"
	_, err := Load(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedNumericColumn(t *testing.T) {
	csv := "kind,year,month\ncalendar,twentytwentyone,06\n"
	_, err := Load(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestLoadEmptyInputYieldsNoGroups(t *testing.T) {
	groups, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestLoadExpenseRow(t *testing.T) {
	csv := "kind,date,amount,expense_type\n" +
		"expense,20210115,42.50,travel\n"

	groups, err := Load(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	exp, ok := groups[0].Records[0].(record.Expense)
	require.True(t, ok)
	assert.Equal(t, record.YMD{Year: 2021, Month: 1, Day: 15}, exp.Date)
	assert.Equal(t, 42.50, exp.Amount)
	require.NotNil(t, exp.ExpenseType)
	assert.Equal(t, "travel", *exp.ExpenseType)
}
