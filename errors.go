package arraylist

import "errors"

var (
	// ErrOutOfRange is returned by checked element access when the index is
	// not in [0, Len()).
	// ErrOutOfRange จะถูกคืนค่าจากการเข้าถึงแบบตรวจสอบขอบเขต เมื่อ index ไม่อยู่ในช่วง [0, Len())
	ErrOutOfRange = errors.New("arraylist: index out of range")

	// ErrEmptyList is returned by Pop, First and Last when the list holds no
	// elements.
	// ErrEmptyList จะถูกคืนค่าจาก Pop, First และ Last เมื่อ list ไม่มีรายการอยู่เลย
	ErrEmptyList = errors.New("arraylist: list is empty")

	// ErrAllocation is returned when growing the list would exceed the
	// configured capacity limit. The failed operation has no effect.
	// ErrAllocation จะถูกคืนค่าเมื่อการขยาย list จะทำให้เกินขีดจำกัดความจุที่กำหนดไว้
	// การทำงานที่ล้มเหลวจะไม่มีผลใดๆ ต่อข้อมูลใน list
	ErrAllocation = errors.New("arraylist: capacity limit exceeded")
)
