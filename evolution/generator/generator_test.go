package generator

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elementalsouls.app/evolution/model"
)

func TestBuildPrompt(t *testing.T) {
	testCases := []struct {
		name     string
		params   model.GenerationParams
		expected string
	}{
		{
			name:   "txt2img_without_user_prompt",
			params: model.GenerationParams{Element: model.ElementFire, Mode: model.ImageModeTxt2Img, ToLevel: 3},
			expected: "A blazing fire elemental spirit surrounded by embers and molten lava, " +
				"warm orange, red and gold palette, level 3 evolution, intricate sigils, cinematic lighting, dynamic pose",
		},
		{
			name:   "img2img_with_user_prompt",
			params: model.GenerationParams{Element: model.ElementAir, Mode: model.ImageModeImg2Img, ToLevel: 5, Prompt: "  wings  "},
			expected: "An ethereal air elemental spirit swirling with clouds and astral lights, " +
				"iridescent white, cyan and violet palette, level 5 evolution, intricate sigils, cinematic lighting, " +
				"respect base composition, wings",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, BuildPrompt(tc.params))
		})
	}
}

func TestResolveStrength(t *testing.T) {
	assert.Nil(t, ResolveStrength(model.ImageModeTxt2Img, nil))

	s := ResolveStrength(model.ImageModeImg2Img, nil)
	require.NotNil(t, s)
	assert.Equal(t, DefaultImg2ImgStrength, *s)

	custom := 0.3
	assert.Equal(t, 0.3, *ResolveStrength(model.ImageModeImg2Img, &custom))
}

func TestLocal_Deterministic(t *testing.T) {
	params := model.GenerationParams{Element: model.ElementWater, Mode: model.ImageModeTxt2Img, ToLevel: 4}

	a, err := NewLocal().Generate(context.Background(), params)
	require.NoError(t, err)
	b, err := NewLocal().Generate(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, a.Data, b.Data)
	assert.Equal(t, "image/svg+xml", a.MimeType)
	assert.Contains(t, string(a.Data), "#38bdf8")
	assert.Contains(t, string(a.Data), "Lv.4")
	assert.True(t, strings.HasPrefix(string(a.Data), "<svg"))

	_, err = NewLocal().Generate(context.Background(), model.GenerationParams{Element: "Metal"})
	assert.Error(t, err)
}

func TestComfyClient_Generate(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}

	testCases := []struct {
		name          string
		status        int
		response      string
		delay         time.Duration
		expectedError string
	}{
		{
			name:     "success",
			status:   http.StatusOK,
			response: `{"images":[{"data":"` + base64.StdEncoding.EncodeToString(png) + `"}]}`,
		},
		{name: "server_error", status: http.StatusBadGateway, response: `{}`, expectedError: "status 502"},
		{name: "empty", status: http.StatusOK, response: `{"images":[]}`, expectedError: "no image"},
		{name: "timeout", status: http.StatusOK, response: `{}`, delay: 200 * time.Millisecond, expectedError: "comfy request"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/prompt", r.URL.Path)
				var body comfyRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, comfyWorkflow, body.Workflow)
				assert.Equal(t, NegativePrompt, body.NegativePrompt)
				require.NotNil(t, body.Strength)
				assert.Equal(t, DefaultImg2ImgStrength, *body.Strength)

				time.Sleep(tc.delay)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.response))
			}))
			defer server.Close()

			client := NewComfyClient(server.URL, 100*time.Millisecond)
			img, err := client.Generate(context.Background(), model.GenerationParams{
				Element:      model.ElementEarth,
				Mode:         model.ImageModeImg2Img,
				ToLevel:      2,
				BaseImageRef: "ipfs://base",
			})

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, png, img.Data)
			assert.Equal(t, "image/png", img.MimeType)
			assert.Contains(t, img.Prompt, "level 2 evolution")
		})
	}
}

func TestNew(t *testing.T) {
	g, err := New(Config{Provider: ProviderLocal})
	require.NoError(t, err)
	assert.IsType(t, &Local{}, g)

	_, err = New(Config{Provider: ProviderComfy})
	assert.Error(t, err)

	_, err = New(Config{Provider: "dalle"})
	assert.Error(t, err)
}
