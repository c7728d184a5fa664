package market

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"krishisahay/entities"
)

func TestSignalFor(t *testing.T) {
	cases := []struct {
		delta float64
		want  entities.Signal
	}{
		{15.1, entities.SignalSell},
		{15.0, entities.SignalHold},
		{0, entities.SignalHold},
		{-10.0, entities.SignalHold},
		{-10.1, entities.SignalBuy},
		{-15.0, entities.SignalBuy},
		{18, entities.SignalSell},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SignalFor(c.delta), "delta %v", c.delta)
	}
}
