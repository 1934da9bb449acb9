package entity

import "fmt"

// Bucket clasifica el propósito del stock dentro de una ubicación.
// Enum cerrado: el ledger solo acepta estos valores en la columna type.
type Bucket string

const (
	BucketAvailable      Bucket = "available"
	BucketCommitted      Bucket = "committed"
	BucketReserved       Bucket = "reserved"
	BucketDamaged        Bucket = "damaged"
	BucketSafety         Bucket = "safety"
	BucketQualityControl Bucket = "qualityControl"
	BucketIncoming       Bucket = "incoming"
)

// TargetOnHand pseudo-destino de ajustes: es una vista, no un bucket de almacenamiento.
// Las escrituras dirigidas a onHand se registran en available.
const TargetOnHand = "onHand"

// Buckets lista todos los buckets del enum, en orden estable.
var Buckets = []Bucket{
	BucketAvailable,
	BucketCommitted,
	BucketReserved,
	BucketDamaged,
	BucketSafety,
	BucketQualityControl,
	BucketIncoming,
}

// OnHandBuckets buckets que componen el total onHand (excluye incoming).
// Agrupación fija de corrección: no es configurable.
var OnHandBuckets = []Bucket{
	BucketAvailable,
	BucketCommitted,
	BucketReserved,
	BucketDamaged,
	BucketSafety,
	BucketQualityControl,
}

// UnavailableBuckets buckets en mano pero no vendibles.
var UnavailableBuckets = []Bucket{
	BucketReserved,
	BucketDamaged,
	BucketSafety,
	BucketQualityControl,
}

// ParseBucket valida y convierte un string al enum Bucket.
func ParseBucket(s string) (Bucket, error) {
	switch Bucket(s) {
	case BucketAvailable, BucketCommitted, BucketReserved, BucketDamaged,
		BucketSafety, BucketQualityControl, BucketIncoming:
		return Bucket(s), nil
	}
	return "", fmt.Errorf("bucket desconocido: %q", s)
}

// ResolveAdjustmentTarget resuelve el destino de un ajuste: un bucket del enum o el
// pseudo-destino onHand. Devuelve el bucket donde se escribe y los buckets sobre los
// que se agrega al calcular el valor actual (para SetAbsolute).
func ResolveAdjustmentTarget(target string) (write Bucket, sumOver []Bucket, err error) {
	if target == TargetOnHand {
		return BucketAvailable, OnHandBuckets, nil
	}
	b, err := ParseBucket(target)
	if err != nil {
		return "", nil, err
	}
	return b, []Bucket{b}, nil
}

func (b Bucket) String() string { return string(b) }
