package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests ParseBucket — enum cerrado
// ──────────────────────────────────────────────────────────────────────────────

func TestParseBucket_ValoresDelEnum(t *testing.T) {
	for _, b := range entity.Buckets {
		parsed, err := entity.ParseBucket(string(b))
		require.NoError(t, err, "todo valor del enum debe parsearse")
		assert.Equal(t, b, parsed)
	}
}

func TestParseBucket_ValorDesconocido_RetornaError(t *testing.T) {
	for _, s := range []string{"", "onHand", "AVAILABLE", "backorder", "quality_control"} {
		_, err := entity.ParseBucket(s)
		assert.Error(t, err, "%q no pertenece al enum y debe rechazarse", s)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ResolveAdjustmentTarget — pseudo-destino onHand
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveAdjustmentTarget_OnHandEscribeEnAvailable(t *testing.T) {
	write, sumOver, err := entity.ResolveAdjustmentTarget(entity.TargetOnHand)
	require.NoError(t, err)

	assert.Equal(t, entity.BucketAvailable, write,
		"onHand es una vista: las escrituras van a available")
	assert.Equal(t, entity.OnHandBuckets, sumOver,
		"el valor actual de onHand se agrega sobre los seis buckets físicos")
	assert.NotContains(t, sumOver, entity.BucketIncoming,
		"incoming no forma parte de onHand")
}

func TestResolveAdjustmentTarget_BucketDirecto(t *testing.T) {
	write, sumOver, err := entity.ResolveAdjustmentTarget("damaged")
	require.NoError(t, err)

	assert.Equal(t, entity.BucketDamaged, write)
	assert.Equal(t, []entity.Bucket{entity.BucketDamaged}, sumOver,
		"un bucket concreto se agrega solo sobre sí mismo")
}

func TestResolveAdjustmentTarget_DestinoInvalido_RetornaError(t *testing.T) {
	_, _, err := entity.ResolveAdjustmentTarget("unavailable")
	assert.Error(t, err, "unavailable es un compuesto de solo lectura, no un destino de ajuste")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests composición de los agrupados fijos
// ──────────────────────────────────────────────────────────────────────────────

func TestBuckets_ComposicionDeGrupos(t *testing.T) {
	assert.Len(t, entity.Buckets, 7)
	assert.Len(t, entity.OnHandBuckets, 6, "onHand abarca todos los buckets menos incoming")
	assert.Len(t, entity.UnavailableBuckets, 4)

	assert.NotContains(t, entity.UnavailableBuckets, entity.BucketAvailable)
	assert.NotContains(t, entity.UnavailableBuckets, entity.BucketCommitted)
	assert.NotContains(t, entity.UnavailableBuckets, entity.BucketIncoming)
}
