package threadpool

// Terminating exposes the termination flag so tests can order Stop against
// task release deterministically.
func (p *Pool) Terminating() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.started && p.terminate
}
