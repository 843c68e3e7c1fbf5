// internal/meta/wallet.go
package meta

// Wallet — постоянная валюта игрока (монеты между забегами).
type Wallet struct {
	balance  int
	watchers watchers[int]
}

func NewWallet(balance int) *Wallet {
	if balance < 0 {
		balance = 0
	}
	return &Wallet{balance: balance}
}

// Balance returns the current amount.
func (w *Wallet) Balance() int {
	return w.balance
}

// Add credits n coins. Non-positive amounts are ignored.
func (w *Wallet) Add(n int) {
	if n <= 0 {
		return
	}
	w.balance += n
	w.watchers.notify(w.balance)
}

// Spend debits exactly cost. It is rejected, with no change, when cost exceeds the balance.
func (w *Wallet) Spend(cost int) bool {
	if cost < 0 || cost > w.balance {
		return false
	}
	w.balance -= cost
	w.watchers.notify(w.balance)
	return true
}

// Set overwrites the balance (profile load / reset).
func (w *Wallet) Set(balance int) {
	if balance < 0 {
		balance = 0
	}
	w.balance = balance
	w.watchers.notify(w.balance)
}

// Watch registers fn for balance changes and returns a cancel func.
func (w *Wallet) Watch(fn func(balance int)) func() {
	return w.watchers.add(fn)
}
