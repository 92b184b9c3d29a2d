package console

import (
	"errors"
	"fmt"
	"sync"
)

var ErrScreenClosed = errors.New("console screen closed")

type op struct {
	fn    func(*State)
	done  chan struct{}
	panic any
}

// Screen é o dono único do State de uma sessão. Toda mutação é uma closure
// aplicada em série pela goroutine da tela; chamadas ao backend acontecem
// fora dela e apenas o resultado volta via Do.
type Screen struct {
	ID string

	ops  chan *op
	quit chan struct{}
	done chan struct{}
	once sync.Once

	state State
}

func NewScreen(id string) *Screen {
	s := &Screen{
		ID:    id,
		ops:   make(chan *op),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
		state: newState(),
	}
	go s.loop()
	return s
}

func (s *Screen) loop() {
	defer close(s.done)
	for {
		select {
		case o := <-s.ops:
			s.apply(o)
		case <-s.quit:
			return
		}
	}
}

func (s *Screen) apply(o *op) {
	defer close(o.done)
	defer func() {
		if r := recover(); r != nil {
			o.panic = r
		}
	}()
	o.fn(&s.state)
}

// Do aplica fn no estado e espera terminar. Um panic dentro de fn é
// repassado à goroutine chamadora.
func (s *Screen) Do(fn func(*State)) error {
	o := &op{fn: fn, done: make(chan struct{})}

	select {
	case s.ops <- o:
	case <-s.quit:
		return ErrScreenClosed
	}

	<-o.done
	if o.panic != nil {
		panic(fmt.Sprintf("console screen %s: %v", s.ID, o.panic))
	}
	return nil
}

// Snapshot devolve uma cópia profunda do estado atual.
func (s *Screen) Snapshot() (State, error) {
	var out State
	err := s.Do(func(st *State) {
		out = st.Clone()
	})
	return out, err
}

func (s *Screen) Close() {
	s.once.Do(func() {
		close(s.quit)
	})
	<-s.done
}
