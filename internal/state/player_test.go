package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealUpClampsToMaxHP(t *testing.T) {
	p := &PlayerState{HP: 90, MaxHP: 100, Alive: true}
	healed := p.HealUp(30)

	assert.Equal(t, 100, p.HP, "HP-cap law: heal never exceeds MaxHP")
	assert.Equal(t, 10, healed, "reported heal is the actual delta, not the requested amount")
}

func TestHealUpIgnoresNonPositiveAmount(t *testing.T) {
	p := &PlayerState{HP: 50, MaxHP: 100, Alive: true}
	assert.Equal(t, 0, p.HealUp(0))
	assert.Equal(t, 0, p.HealUp(-5))
	assert.Equal(t, 50, p.HP)
}

func TestPlayerApplyDamageFloorsAtZeroAndFlipsAlive(t *testing.T) {
	p := &PlayerState{HP: 10, MaxHP: 100, Alive: true}
	p.ApplyDamage(25)

	assert.Equal(t, 0, p.HP)
	assert.False(t, p.Alive)
}

func TestPlayerApplyDamageKeepsAliveAboveZero(t *testing.T) {
	p := &PlayerState{HP: 10, MaxHP: 100, Alive: true}
	p.ApplyDamage(4)

	assert.Equal(t, 6, p.HP)
	assert.True(t, p.Alive)
}

func TestPlayerAccuracyDefaultsToPerfect(t *testing.T) {
	p := &PlayerState{}
	assert.Equal(t, 1.0, p.Accuracy())
}

func TestPlayerAccuracyUsesBaseWhenSet(t *testing.T) {
	p := &PlayerState{BaseAccuracy: 0.75}
	assert.Equal(t, 0.75, p.Accuracy())
}
