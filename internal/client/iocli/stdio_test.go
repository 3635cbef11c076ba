package iocli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Дескриптор, который гарантированно не является терминалом
const notTerminal = -1

func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnPrintfWrite(t *testing.T) {
	var out bytes.Buffer
	stdio := newStdio(strings.NewReader(""), &out, notTerminal)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s\n", 1, "abc")
	n, err := stdio.Write([]byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, "hello world\ntest 1 abc\nraw", out.String())
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "line", input: "user input\n", want: "user input"},
		{name: "surrounding spaces", input: "  padded \n", want: "padded"},
		{name: "last line without newline", input: "tail", want: "tail"},
		{name: "only first line", input: "first\nsecond\n", want: "first"},
		{name: "empty input", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			stdio := newStdio(strings.NewReader(tt.input), &out, notTerminal)

			result, err := stdio.ReadInput("Prompt: ")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
			assert.Equal(t, "Prompt: ", out.String())
		})
	}
}

func TestReadPassword_FromPipe(t *testing.T) {
	var out bytes.Buffer
	stdio := newStdio(strings.NewReader("correct horse battery\n"), &out, notTerminal)

	key, err := stdio.ReadPassword("Access key: ")
	require.NoError(t, err)
	assert.Equal(t, "correct horse battery", key)
}
