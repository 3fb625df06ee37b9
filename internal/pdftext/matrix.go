package pdftext

// matrix is a PDF transformation matrix in row-vector form:
//
//	[a b 0]
//	[c d 0]
//	[e f 1]
type matrix [3][3]float64

var identity = matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func (m matrix) mul(n matrix) matrix {
	var out matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return out
}

func translate(tx, ty float64) matrix {
	return matrix{{1, 0, 0}, {0, 1, 0}, {tx, ty, 1}}
}

// toMatrix builds a matrix from the six operands of cm, Tm or /Matrix.
func toMatrix(n []float64) matrix {
	return matrix{{n[0], n[1], 0}, {n[2], n[3], 0}, {n[4], n[5], 1}}
}
