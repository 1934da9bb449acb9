package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

func TestNewInventoryLevel_RellenaConCeros(t *testing.T) {
	// Sin entradas en el ledger: nivel con todos los buckets en cero, nunca un error.
	level := entity.NewInventoryLevel(1, 10, nil)

	require.Len(t, level.Quantities, len(entity.Buckets))
	for _, b := range entity.Buckets {
		assert.Zero(t, level.Quantity(b), "bucket %s sin entradas debe reportar cero", b)
	}
	assert.Zero(t, level.OnHand())
	assert.Zero(t, level.Unavailable())
}

func TestNewInventoryLevel_RellenaBucketsAusentes(t *testing.T) {
	level := entity.NewInventoryLevel(1, 10, map[entity.Bucket]int64{
		entity.BucketAvailable: 12,
		entity.BucketDamaged:   3,
	})

	assert.Equal(t, int64(12), level.Quantity(entity.BucketAvailable))
	assert.Equal(t, int64(3), level.Quantity(entity.BucketDamaged))
	assert.Zero(t, level.Quantity(entity.BucketReserved),
		"los buckets sin sumas se rellenan con cero")
	assert.Zero(t, level.Quantity(entity.BucketIncoming))
}

func TestInventoryLevel_OnHandExcluyeIncoming(t *testing.T) {
	level := entity.NewInventoryLevel(1, 10, map[entity.Bucket]int64{
		entity.BucketAvailable:      5,
		entity.BucketCommitted:      2,
		entity.BucketReserved:       1,
		entity.BucketDamaged:        1,
		entity.BucketSafety:         1,
		entity.BucketQualityControl: 1,
		entity.BucketIncoming:       100,
	})

	assert.Equal(t, int64(11), level.OnHand(),
		"onHand suma los seis buckets físicos; incoming aún no está en mano")
	assert.Equal(t, int64(4), level.Unavailable(),
		"unavailable suma reserved, damaged, safety y qualityControl")
}

func TestInventoryLevel_CantidadesNegativasSeSumanTalCual(t *testing.T) {
	// El ledger admite agregados negativos (sobreventa, correcciones pendientes):
	// los compuestos los reflejan sin recortar.
	level := entity.NewInventoryLevel(1, 10, map[entity.Bucket]int64{
		entity.BucketAvailable: -4,
		entity.BucketCommitted: 6,
	})

	assert.Equal(t, int64(-4), level.Quantity(entity.BucketAvailable))
	assert.Equal(t, int64(2), level.OnHand())
}
