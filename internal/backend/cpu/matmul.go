package cpu

import (
	"github.com/klauspost/cpuid/v2"

	"github.com/born-ml/grad/internal/parallel"
)

// l1DataCache is the detected L1 data cache size in bytes, with a 32 KiB
// fallback when detection is unavailable (e.g. some VMs).
var l1DataCache = detectL1D()

func detectL1D() int {
	if l1 := cpuid.CPU.Cache.L1D; l1 > 0 {
		return l1
	}
	return 32 << 10
}

// kTile returns how many rows of the n-wide B panel fit in half the L1 data
// cache, clamped to a useful range. The inner product loop is tiled over k in
// chunks of this size so the panel stays resident across the row sweep.
func kTile(n int) int {
	if n <= 0 {
		return 8
	}
	t := l1DataCache / (2 * 4 * n)
	if t < 8 {
		return 8
	}
	if t > 256 {
		return 256
	}
	return t
}

// matmulCfg parallelizes over output rows; rows are coarse work units,
// so the chunk threshold is much lower than the package default.
func matmulCfg() parallel.Config {
	cfg := parallel.DefaultConfig()
	cfg.MinChunkSize = 8
	return cfg
}

// MatMul computes dst = a @ b for row-major a[m,k] and b[k,n], dst[m,n].
func MatMul(dst, a, b []float32, m, k, n int) {
	bs := kTile(n)
	parallel.For(m, func(i int) {
		ci := dst[i*n : (i+1)*n]
		for x := range ci {
			ci[x] = 0
		}
		ai := a[i*k : (i+1)*k]
		for k0 := 0; k0 < k; k0 += bs {
			k1 := min(k0+bs, k)
			for kk := k0; kk < k1; kk++ {
				av := ai[kk]
				brow := b[kk*n : (kk+1)*n]
				for j, bv := range brow {
					ci[j] += av * bv
				}
			}
		}
	}, matmulCfg())
}

// MatMulTB computes dst = a @ bᵀ for row-major a[m,k] and b[n,k], dst[m,n].
// Both operands are traversed along contiguous rows, so no tiling is needed.
func MatMulTB(dst, a, b []float32, m, k, n int) {
	parallel.For(m, func(i int) {
		ai := a[i*k : (i+1)*k]
		for j := 0; j < n; j++ {
			bj := b[j*k : (j+1)*k]
			var sum float32
			for kk, av := range ai {
				sum += av * bj[kk]
			}
			dst[i*n+j] = sum
		}
	}, matmulCfg())
}

// MatMulTA computes dst = aᵀ @ b for row-major a[k,m] and b[k,n], dst[m,n].
func MatMulTA(dst, a, b []float32, m, k, n int) {
	bs := kTile(n)
	parallel.For(m, func(i int) {
		ci := dst[i*n : (i+1)*n]
		for x := range ci {
			ci[x] = 0
		}
		for k0 := 0; k0 < k; k0 += bs {
			k1 := min(k0+bs, k)
			for kk := k0; kk < k1; kk++ {
				av := a[kk*m+i]
				brow := b[kk*n : (kk+1)*n]
				for j, bv := range brow {
					ci[j] += av * bv
				}
			}
		}
	}, matmulCfg())
}
