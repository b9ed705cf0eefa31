package menu_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/mauv0809/football-academy/internal/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prompter(input string) (*menu.Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return menu.NewPrompter(strings.NewReader(input), &out), &out
}

func TestInput(t *testing.T) {
	t.Run("required asks again", func(t *testing.T) {
		p, out := prompter("\n  Jamie  \n")
		v, err := p.Input("Name: ", true)
		require.NoError(t, err)
		assert.Equal(t, "Jamie", v)
		assert.Contains(t, out.String(), "This field is required.")
	})

	t.Run("optional accepts blank", func(t *testing.T) {
		p, _ := prompter("\n")
		v, err := p.Input("Name: ", false)
		require.NoError(t, err)
		assert.Empty(t, v)
	})

	t.Run("last line without newline", func(t *testing.T) {
		p, _ := prompter("tail")
		v, err := p.Input("Name: ", true)
		require.NoError(t, err)
		assert.Equal(t, "tail", v)

		_, err = p.Input("Name: ", true)
		assert.ErrorIs(t, err, menu.ErrInputClosed)
	})
}

func TestIntInput(t *testing.T) {
	p, out := prompter("abc\n50\n5\n")
	v, err := p.IntInput("Day: ", 1, 31)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Contains(t, out.String(), "Please enter a valid number.")
	assert.Contains(t, out.String(), "Please enter a value between 1 and 31.")

	t.Run("lower bound only", func(t *testing.T) {
		p, out := prompter("-1\n0\n")
		v, err := p.IntInput("Budget: ", 0, menu.NoMax)
		require.NoError(t, err)
		assert.Equal(t, 0, v)
		assert.Contains(t, out.String(), "greater than or equal to 0")
	})

	t.Run("optional", func(t *testing.T) {
		p, _ := prompter("\n7\n")
		v, err := p.OptionalIntInput("Budget: ", 0, menu.NoMax)
		require.NoError(t, err)
		assert.Nil(t, v)

		v, err = p.OptionalIntInput("Budget: ", 0, menu.NoMax)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, 7, *v)
	})

	t.Run("closed input", func(t *testing.T) {
		p, _ := prompter("")
		_, err := p.IntInput("Day: ", 1, 31)
		assert.ErrorIs(t, err, menu.ErrInputClosed)
	})
}

func TestBoolInput(t *testing.T) {
	p, out := prompter("maybe\nY\nno\n")
	v, err := p.BoolInput("Sure?")
	require.NoError(t, err)
	assert.True(t, v)
	assert.Contains(t, out.String(), "Sure? (y/n): ")
	assert.Contains(t, out.String(), "Please enter 'y' or 'n'.")

	v, err = p.BoolInput("Sure?")
	require.NoError(t, err)
	assert.False(t, v)
}

func TestSelect(t *testing.T) {
	items := []string{"Full Time", "Trial"}

	t.Run("valid choice", func(t *testing.T) {
		p, out := prompter("x\n3\n2\n")
		idx, err := p.Select("Pick:", items)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
		assert.Contains(t, out.String(), "1. Full Time")
		assert.Contains(t, out.String(), "Please enter a number between 1 and 2.")
	})

	t.Run("cancel", func(t *testing.T) {
		p, _ := prompter("0\n")
		idx, err := p.Select("Pick:", items)
		require.NoError(t, err)
		assert.Equal(t, -1, idx)
	})

	t.Run("nothing to pick", func(t *testing.T) {
		p, out := prompter("")
		idx, err := p.Select("Pick:", nil)
		require.NoError(t, err)
		assert.Equal(t, -1, idx)
		assert.Contains(t, out.String(), "No items available.")
	})
}

func TestInput_CancelledWhileWaiting(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	p := menu.NewPrompter(r, io.Discard).WithContext(ctx)

	done := make(chan error, 1)
	go func() {
		_, err := p.Input("Name: ", true)
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Input did not return after the context was cancelled")
	}

	_, err := p.Input("Name: ", false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInput_EmptyRequiredAnswerAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	p := menu.NewPrompter(strings.NewReader("\n"), &out).WithContext(ctx)
	cancel()

	_, err := p.Input("Name: ", true)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, out.String(), "This field is required.")
}
