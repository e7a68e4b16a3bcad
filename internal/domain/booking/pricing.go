package booking

// TotalPrice computes the price of quantity tickets at the unit price
// snapshotted when the booking was created. Later price changes to the
// ticket type never affect existing bookings.
func TotalPrice(unitPrice Money, quantity int) Money {
	return Money{cents: unitPrice.cents * int64(quantity)}
}
