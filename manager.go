package linear

import (
	"fmt"

	"github.com/ailidani/linear/lib"
	"github.com/ailidani/linear/log"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Report counts the contents of a Manager
type Report struct {
	Pending   int // tasks waiting in the queue
	Undoable  int // tasks on the undo stack
	History   int // tasks recorded in the history list
	Completed int // tasks currently considered done
}

func (r Report) String() string {
	return fmt.Sprintf("Report[pending=%d undoable=%d history=%d completed=%d]", r.Pending, r.Undoable, r.History, r.Completed)
}

type container interface {
	Empty() bool
	fmt.Stringer
}

// Manager composes a queue of pending tasks, a stack for undo and a linked list of history
type Manager struct {
	config *Config

	queue     *lib.Queue[string]
	stack     *lib.Stack[string]
	list      *lib.LinkedList[string]
	completed mapset.Set[string]
}

// NewManager creates a Manager with empty containers
func NewManager(config *Config) *Manager {
	m := new(Manager)
	m.config = config
	m.queue = lib.NewQueue[string]()
	m.stack = lib.NewStack[string]()
	m.list = lib.NewLinkedList[string]()
	m.completed = mapset.NewThreadUnsafeSet[string]()
	return m
}

func (m *Manager) reset() {
	m.queue.Clear()
	m.stack.Clear()
	m.list.Clear()
	m.completed.Clear()
}

// BasicOperations exercises each container on its own
func (m *Manager) BasicOperations() error {
	log.Info("stack operations (LIFO)")
	for _, task := range []string{"Task 1", "Task 2", "Task 3"} {
		m.stack.Push(task)
		log.Debugf("pushed %q", task)
	}
	log.Infof("stack (bottom to top): %v", m.stack)
	top, err := m.stack.Pop()
	if err != nil {
		return err
	}
	log.Infof("popped %q, stack: %v", top, m.stack)
	if top, err = m.stack.Peek(); err != nil {
		return err
	}
	log.Infof("top element is %q", top)

	log.Info("queue operations (FIFO)")
	for _, customer := range []string{"Customer A", "Customer B", "Customer C"} {
		m.queue.Enqueue(customer)
		log.Debugf("enqueued %q", customer)
	}
	log.Infof("queue (front to rear): %v", m.queue)
	served, err := m.queue.Dequeue()
	if err != nil {
		return err
	}
	log.Infof("served %q, queue: %v", served, m.queue)
	front, err := m.queue.Front()
	if err != nil {
		return err
	}
	rear, err := m.queue.Rear()
	if err != nil {
		return err
	}
	log.Infof("front %q, rear %q", front, rear)

	log.Info("linked list operations")
	m.list.InsertAtBeginning("Header")
	m.list.InsertAtEnd("Footer")
	if err := m.list.InsertAt("Content 1", 1); err != nil {
		return err
	}
	if err := m.list.InsertAt("Content 2", 2); err != nil {
		return err
	}
	log.Infof("list: %v", m.list)
	log.Infof("found %q at position %d", "Content 1", m.list.Search("Content 1"))
	v, err := m.list.Get(1)
	if err != nil {
		return err
	}
	log.Infof("element at position 1: %q", v)
	return nil
}

// ProcessTasks runs the task processing system: tasks are queued, a batch is
// processed into the undo stack and history list, and the last one is undone
// back to the front of the queue.
func (m *Manager) ProcessTasks() (*Report, error) {
	m.reset()

	for _, task := range m.config.Tasks {
		m.queue.Enqueue(task)
	}
	log.Infof("queued tasks: %v", m.queue)

	for i := 0; i < m.config.Batch && !m.queue.Empty(); i++ {
		task, err := m.queue.Dequeue()
		if err != nil {
			return nil, err
		}
		m.completed.Add(task)
		m.stack.Push(task)
		m.list.InsertAtEnd(task)
		log.Infof("processed %q", task)
	}
	log.Infof("remaining tasks: %v", m.queue)
	log.Infof("history: %v", m.list)
	log.Infof("undo stack: %v", m.stack)

	if !m.stack.Empty() {
		last, err := m.stack.Pop()
		if err != nil {
			return nil, err
		}
		m.completed.Remove(last)

		// requeue the undone task ahead of everything pending
		queue := lib.NewQueue[string]()
		queue.Enqueue(last)
		for !m.queue.Empty() {
			task, err := m.queue.Dequeue()
			if err != nil {
				return nil, err
			}
			queue.Enqueue(task)
		}
		m.queue = queue
		log.Infof("undid %q, queue: %v", last, m.queue)
	}

	if len(m.config.Tasks) > 0 {
		task := m.config.Tasks[0]
		if p := m.list.Search(task); p != -1 {
			log.Infof("found %q in history at position %d", task, p)
		} else {
			log.Infof("%q not in history", task)
		}
	}

	r := m.Summary()
	return &r, nil
}

// DataFlow moves items from the list to the queue, processes part of the queue
// onto the stack and drains the stack. It returns the drained items in order.
func (m *Manager) DataFlow() ([]string, error) {
	m.reset()

	for _, item := range m.config.Items {
		m.list.InsertAtEnd(item)
	}
	log.Infof("list: %v", m.list)

	for i := 0; i < m.list.Len(); i++ {
		item, err := m.list.Get(i)
		if err != nil {
			return nil, err
		}
		m.queue.Enqueue(item)
	}
	log.Infof("queue after transfer: %v", m.queue)

	for n := 0; n < m.config.Process && !m.queue.Empty(); n++ {
		item, err := m.queue.Dequeue()
		if err != nil {
			return nil, err
		}
		m.stack.Push(m.config.Prefix + item)
	}
	log.Infof("stack after processing: %v", m.stack)
	log.Infof("remaining in queue: %v", m.queue)

	drained := make([]string, 0, m.stack.Len())
	for !m.stack.Empty() {
		item, err := m.stack.Pop()
		if err != nil {
			return nil, err
		}
		log.Debugf("retrieved %q from stack", item)
		drained = append(drained, item)
	}
	return drained, nil
}

// ErrorHandling provokes every error kind on empty or short containers.
// It returns the operations that did not fail the expected way.
func (m *Manager) ErrorHandling() error {
	m.reset()

	var result *multierror.Error
	expect := func(op string, err error, kind error) {
		switch {
		case err == nil:
			result = multierror.Append(result, errors.Errorf("%s succeeded, want %v", op, kind))
		case !errors.Is(err, kind):
			result = multierror.Append(result, errors.Wrapf(err, "%s: want %v", op, kind))
		default:
			log.Infof("caught expected error from %s: %v", op, err)
		}
	}

	_, err := m.stack.Pop()
	expect("stack pop", err, lib.ErrUnderflow)
	_, err = m.stack.Peek()
	expect("stack peek", err, lib.ErrUnderflow)

	_, err = m.queue.Dequeue()
	expect("queue dequeue", err, lib.ErrUnderflow)
	_, err = m.queue.Front()
	expect("queue front", err, lib.ErrUnderflow)

	_, err = m.list.Get(0)
	expect("list get(0)", err, lib.ErrOutOfRange)
	_, err = m.list.DeleteAt(0)
	expect("list delete(0)", err, lib.ErrOutOfRange)

	m.list.InsertAtEnd("Test Item")
	_, err = m.list.Get(5)
	expect("list get(5)", err, lib.ErrOutOfRange)
	expect("list insert(-1)", m.list.InsertAt("Invalid", -1), lib.ErrOutOfRange)

	return result.ErrorOrNil()
}

// Summary logs and counts the current contents
func (m *Manager) Summary() Report {
	for _, s := range []struct {
		name string
		c    container
	}{{"stack", m.stack}, {"queue", m.queue}, {"list", m.list}} {
		if s.c.Empty() {
			log.Infof("%s is empty", s.name)
		} else {
			log.Infof("%s: %v", s.name, s.c)
		}
	}
	return Report{
		Pending:   m.queue.Len(),
		Undoable:  m.stack.Len(),
		History:   m.list.Len(),
		Completed: m.completed.Cardinality(),
	}
}

// Run executes every demonstration in order
func (m *Manager) Run() error {
	if err := m.BasicOperations(); err != nil {
		return errors.Wrap(err, "basic operations")
	}
	r, err := m.ProcessTasks()
	if err != nil {
		return errors.Wrap(err, "task processing")
	}
	log.Infof("task processing: %v", r)
	drained, err := m.DataFlow()
	if err != nil {
		return errors.Wrap(err, "data flow")
	}
	log.Infof("data flow drained %v", drained)
	if err := m.ErrorHandling(); err != nil {
		return errors.Wrap(err, "error handling")
	}
	log.Infof("summary: %v", m.Summary())
	return nil
}
