package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFeatureActionIsIntercepted(t *testing.T) {
	page := testPage(t, "code-generator")
	m := sized(NewFeatureModel(page, zap.NewNop()))
	m = typeText(m, "sort a list")

	fm := m.(FeatureModel)
	require.Equal(t, "sort a list", fm.Input())

	m, cmd := press(m, "enter")
	assert.Nil(t, cmd)
	fm = m.(FeatureModel)
	assert.True(t, fm.Interceptor().IsOpen())
	assert.Equal(t, "generate", fm.Interceptor().LastAction())
	assert.Equal(t, page.MaintenanceMessage(), fm.Interceptor().Dialog().Message)
	assert.Equal(t, "sort a list", fm.Input(), "the prompt survives the interception")
	assert.Equal(t, 0, fm.Option())
	assert.Contains(t, fm.View(), "Under Maintenance")
	assert.Contains(t, fm.View(), "UhuruChat Inc.")

	// Keys do not reach the page while the dialog is up.
	m = typeText(m, "xyz")
	assert.Equal(t, "sort a list", m.(FeatureModel).Input())

	m, cmd = press(m, "esc")
	assert.Nil(t, cmd, "esc only closes the dialog")
	fm = m.(FeatureModel)
	assert.False(t, fm.Interceptor().IsOpen())
	assert.Equal(t, "sort a list", fm.Input())

	// Intercepting again reopens the same dialog.
	m, _ = press(m, "enter")
	assert.True(t, m.(FeatureModel).Interceptor().IsOpen())
	assert.Equal(t, 2, m.(FeatureModel).Interceptor().Triggers())
}

func TestFeatureEscGoesBack(t *testing.T) {
	m := sized(NewFeatureModel(testPage(t, "chatbot"), nil))
	_, cmd := press(m, "esc")
	require.NotNil(t, cmd)
	assert.Equal(t, BackMsg{}, cmd())
}

func TestFeatureOptionsWrap(t *testing.T) {
	page := testPage(t, "nlp-tool")
	require.NotEmpty(t, page.Options)
	m := sized(NewFeatureModel(page, nil))

	m, _ = press(m, "tab", "right")
	assert.Equal(t, 1, m.(FeatureModel).Option())

	m, _ = press(m, "left", "left")
	assert.Equal(t, len(page.Options)-1, m.(FeatureModel).Option())

	// Typing goes to the prompt again after switching focus back.
	m, _ = press(m, "tab")
	m = typeText(m, "hi")
	assert.Equal(t, "hi", m.(FeatureModel).Input())
	assert.Equal(t, len(page.Options)-1, m.(FeatureModel).Option())
}

func TestFeatureWithoutOptionsKeepsFocus(t *testing.T) {
	page := testPage(t, "content-analyzer")
	require.Empty(t, page.Options)
	m := sized(NewFeatureModel(page, nil))
	m, _ = press(m, "tab")
	m = typeText(m, "some text")
	assert.Equal(t, "some text", m.(FeatureModel).Input())
}
