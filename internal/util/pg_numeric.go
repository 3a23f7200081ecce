package util

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// PgNumericToDecimal 將 pgtype.Numeric 轉換為 decimal.Decimal
// 金額欄位在db為 numeric, 服務層一律使用decimal計算
func PgNumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Decimal{}
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

// DecimalToPgNumeric 將 decimal.Decimal 轉換為 pgtype.Numeric
func DecimalToPgNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}
