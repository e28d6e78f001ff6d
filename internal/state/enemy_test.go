package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnemyApplyDamageFloorsAtZero(t *testing.T) {
	e := &EnemyState{HP: 10, MaxHP: 50}
	e.ApplyDamage(30)

	assert.Equal(t, 0, e.HP)
	assert.True(t, e.Dead())
}

func TestEnemyApplyDamageIgnoresNonPositive(t *testing.T) {
	e := &EnemyState{HP: 10, MaxHP: 50}
	e.ApplyDamage(0)
	e.ApplyDamage(-3)
	assert.Equal(t, 10, e.HP)
}

func TestEnemyDeadReportsExactlyAtZero(t *testing.T) {
	e := &EnemyState{HP: 1, MaxHP: 50}
	assert.False(t, e.Dead())
	e.ApplyDamage(1)
	assert.True(t, e.Dead())
}

func TestMaybeEnrageTriggersAtHalfHPInBossRoom(t *testing.T) {
	e := &EnemyState{HP: 51, MaxHP: 100}
	e.MaybeEnrage(true)
	assert.False(t, e.Enraged, "still above half")

	e.HP = 50
	e.MaybeEnrage(true)
	assert.True(t, e.Enraged, "at exactly half triggers enrage")
}

func TestMaybeEnrageNeverTriggersOutsideBossRoom(t *testing.T) {
	e := &EnemyState{HP: 10, MaxHP: 100}
	e.MaybeEnrage(false)
	assert.False(t, e.Enraged)
}

func TestMaybeEnrageIsOneShot(t *testing.T) {
	e := &EnemyState{HP: 40, MaxHP: 100}
	e.MaybeEnrage(true)
	assert.True(t, e.Enraged)

	e.HP = 10
	e.MaybeEnrage(true)
	assert.True(t, e.Enraged, "stays set on a later low-HP call")
}
