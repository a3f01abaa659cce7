package config

import (
	"math"
	"testing"
)

// TestBurstSizes 各类爆炸的实际粒子数 floor(Count * Power)
func TestBurstSizes(t *testing.T) {
	tests := []struct {
		name  string
		power float64
		count int
		want  int
	}{
		{"spark", SparkBurstPower, SparkBurstCount, 4},
		{"settle", SettleBurstPower, SettleBurstCount, 40},
		{"hit", HitBurstPower, HitBurstCount, 216},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := int(math.Floor(float64(tt.count) * tt.power)); got != tt.want {
				t.Errorf("burst size = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUnitConstantRanges(t *testing.T) {
	if BounceRestitution <= 0 || BounceRestitution >= 1 {
		t.Errorf("BounceRestitution = %v, want in (0, 1)", BounceRestitution)
	}
	if BounceFriction <= 0 || BounceFriction > 1 {
		t.Errorf("BounceFriction = %v, want in (0, 1]", BounceFriction)
	}
	if ParticleLifeMin <= 0 || ParticleLifeMin >= ParticleLifeMax {
		t.Errorf("particle life range [%v, %v] is invalid", ParticleLifeMin, ParticleLifeMax)
	}
	if ParticleSizeMin <= 0 || ParticleSizeMin >= ParticleSizeMax {
		t.Errorf("particle size range [%v, %v] is invalid", ParticleSizeMin, ParticleSizeMax)
	}
	if ParticleRedMin > ParticleRedMax || ParticleGreenMin > ParticleGreenMax || ParticleRedMax > 255 {
		t.Error("particle color ranges are invalid")
	}
	// 弹性反弹后的速度必须低于阈值，否则会无限反弹
	if BounceSpeedThreshold*BounceRestitution >= BounceSpeedThreshold {
		t.Error("bounce must lose vertical speed")
	}
	if MaxDeltaTime != 1.0/15.0 {
		t.Errorf("MaxDeltaTime = %v, want 1/15", MaxDeltaTime)
	}
}
