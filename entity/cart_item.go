package entity

// CartItem คือหนึ่งรายการของออเดอร์สดที่วิ่งผ่าน WebSocket
// (denormalized snapshot: ไม่ได้เก็บลง DB ตัวเรลย์เก็บทั้งลิสต์ต่อร้าน)
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
