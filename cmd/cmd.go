package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ailidani/linear/lib"
	"github.com/ailidani/linear/log"
	"github.com/pkg/errors"
)

var errExit = errors.New("exit")

func usage() string {
	return "\n\t push V | pop | peek" +
		"\n\t enqueue V | dequeue | front | rear" +
		"\n\t prepend V | insert V [POS] | delete V | remove POS | search V | get POS" +
		"\n\t show | clear | exit"
}

// Shell drives one stack, one queue and one linked list of strings
type Shell struct {
	stack *lib.Stack[string]
	queue *lib.Queue[string]
	list  *lib.LinkedList[string]
}

func NewShell() *Shell {
	return &Shell{
		stack: lib.NewStack[string](),
		queue: lib.NewQueue[string](),
		list:  lib.NewLinkedList[string](),
	}
}

func position(arg string) (int, error) {
	p, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "bad position %q", arg)
	}
	return p, nil
}

// Exec runs one command line and returns its output
func (s *Shell) Exec(text string) (string, error) {
	words := strings.Fields(text)
	if len(words) < 1 {
		return "", nil
	}
	cmd := words[0]
	args := words[1:]

	switch cmd {
	case "push":
		if len(args) < 1 {
			return "push VALUE", nil
		}
		s.stack.Push(args[0])
		return s.stack.String(), nil

	case "pop":
		return s.stack.Pop()

	case "peek":
		return s.stack.Peek()

	case "enqueue":
		if len(args) < 1 {
			return "enqueue VALUE", nil
		}
		s.queue.Enqueue(args[0])
		return s.queue.String(), nil

	case "dequeue":
		return s.queue.Dequeue()

	case "front":
		return s.queue.Front()

	case "rear":
		return s.queue.Rear()

	case "prepend":
		if len(args) < 1 {
			return "prepend VALUE", nil
		}
		s.list.InsertAtBeginning(args[0])
		return s.list.String(), nil

	case "insert":
		if len(args) < 1 {
			return "insert VALUE [POSITION]", nil
		}
		if len(args) < 2 {
			s.list.InsertAtEnd(args[0])
			return s.list.String(), nil
		}
		p, err := position(args[1])
		if err != nil {
			return "", err
		}
		if err := s.list.InsertAt(args[0], p); err != nil {
			return "", err
		}
		return s.list.String(), nil

	case "delete":
		if len(args) < 1 {
			return "delete VALUE", nil
		}
		if !s.list.DeleteValue(args[0]) {
			return fmt.Sprintf("%q not found", args[0]), nil
		}
		return s.list.String(), nil

	case "remove":
		if len(args) < 1 {
			return "remove POSITION", nil
		}
		p, err := position(args[0])
		if err != nil {
			return "", err
		}
		return s.list.DeleteAt(p)

	case "search":
		if len(args) < 1 {
			return "search VALUE", nil
		}
		return strconv.Itoa(s.list.Search(args[0])), nil

	case "get":
		if len(args) < 1 {
			return "get POSITION", nil
		}
		p, err := position(args[0])
		if err != nil {
			return "", err
		}
		return s.list.Get(p)

	case "show":
		return fmt.Sprintf("stack %v (%d)\nqueue %v (%d)\nlist  %v (%d)",
			s.stack, s.stack.Len(), s.queue, s.queue.Len(), s.list, s.list.Len()), nil

	case "clear":
		s.stack.Clear()
		s.queue.Clear()
		s.list.Clear()
		return "", nil

	case "exit":
		return "", errExit

	default:
		return usage(), nil
	}
}

func main() {
	flag.Parse()
	log.Setup()

	shell := NewShell()
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("linear $ ")
		text, err := reader.ReadString('\n')
		out, cmdErr := shell.Exec(text)
		if cmdErr == errExit {
			os.Exit(0)
		}
		if cmdErr != nil {
			log.Warning(cmdErr)
		} else if out != "" {
			fmt.Println(out)
		}
		if err != nil {
			return
		}
	}
}
