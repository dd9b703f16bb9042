package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("ABC123\n"), "Placa", &out)
	require.NoError(t, err)
	require.Equal(t, "ABC123", got)
	require.Contains(t, out.String(), "Placa")
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("ultimalinea"), "Placa", &out)
	require.NoError(t, err)
	require.Equal(t, "ultimalinea", got)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer
	n, err := GetInt(rdr("2023\n"), "Año", &out)
	require.NoError(t, err)
	require.Equal(t, 2023, n)

	_, err = GetInt(rdr("abc\n"), "Año", &out)
	require.Error(t, err)
}

func TestGetOptionalInt(t *testing.T) {
	var out bytes.Buffer
	n, err := GetOptionalInt(rdr("\n"), "Año", &out)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = GetOptionalInt(rdr("7\n"), "Capacidad", &out)
	require.NoError(t, err)
	require.Equal(t, 7, n)

	_, err = GetOptionalInt(rdr("xyz\n"), "Año", &out)
	require.Error(t, err)
}

func TestGetValidatedRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	got, err := GetValidated(rdr("AB\nABC123\n"), "Placa", &out, func(s string) bool {
		return len(s) == 6
	})
	require.NoError(t, err)
	require.Equal(t, "ABC123", got)
	require.Contains(t, out.String(), "Valor inválido, intente de nuevo.")
}

func TestGetPasswordError(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword("Contraseña", &out)
	require.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return []byte("clave12345"), nil
	}
	var out bytes.Buffer
	pw, err := GetPassword("Contraseña", &out)
	require.NoError(t, err)
	require.Equal(t, "clave12345", pw)
	require.Contains(t, out.String(), "Contraseña")
}
