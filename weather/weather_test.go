package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roamio/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		main string
		want string
	}{
		{"Clear", models.WeatherSunny},
		{"Rain", models.WeatherRainy},
		{"Drizzle", models.WeatherRainy},
		{"Thunderstorm", models.WeatherRainy},
		{"Snow", models.WeatherRainy},
		{"Clouds", models.WeatherCloudy},
		{"Mist", models.WeatherCloudy},
		{"Fog", models.WeatherCloudy},
		{"Haze", models.WeatherCloudy},
		{"Tornado", models.WeatherNeutral},
		{"", models.WeatherNeutral},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.main), tc.main)
	}
}
