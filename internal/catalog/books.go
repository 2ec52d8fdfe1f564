package catalog

// referenceBooks is the built-in data set served by the catalog, in id order.
var referenceBooks = []Book{
	{
		ID: 1, Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: "Fiction", PublicationYear: 1960,
		ISBN: "978-0061120084", Price: price("12.99"), ImageURL: "/images/books/1.jpg",
		Description: "A classic novel about racism and injustice in the American South.",
	},
	{
		ID: 2, Title: "1984", Author: "George Orwell", Genre: "Dystopian", PublicationYear: 1949,
		ISBN: "978-0451524935", Price: price("9.99"), ImageURL: "/images/books/2.jpg",
		Description: "A dystopian novel about totalitarianism and surveillance.",
	},
	{
		ID: 3, Title: "Pride and Prejudice", Author: "Jane Austen", Genre: "Romance", PublicationYear: 1813,
		ISBN: "978-0141439518", Price: price("8.50"), ImageURL: "/images/books/3.jpg",
		Description: "A romantic novel about manners and matrimony in Georgian England.",
	},
	{
		ID: 4, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Fiction", PublicationYear: 1925,
		ISBN: "978-0743273565", Price: price("10.99"), ImageURL: "/images/books/4.jpg",
		Description: "A story of the Jazz Age and the American Dream.",
	},
	{
		ID: 5, Title: "The Catcher in the Rye", Author: "J.D. Salinger", Genre: "Fiction", PublicationYear: 1951,
		ISBN: "978-0316769488", Price: price("9.49"), ImageURL: "/images/books/5.jpg",
		Description: "A coming-of-age story about teenage rebellion.",
	},
	{
		ID: 6, Title: "Harry Potter and the Sorcerer's Stone", Author: "J.K. Rowling", Genre: "Fantasy", PublicationYear: 1997,
		ISBN: "978-0590353427", Price: price("14.99"), ImageURL: "/images/books/6.jpg",
		Description: "A young wizard discovers his magical heritage.",
	},
	{
		ID: 7, Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", PublicationYear: 1937,
		ISBN: "978-0547928227", Price: price("11.99"), ImageURL: "/images/books/7.jpg",
		Description: "An adventure of a hobbit on a quest to reclaim treasure.",
	},
	{
		ID: 8, Title: "The Lord of the Rings", Author: "J.R.R. Tolkien", Genre: "Fantasy", PublicationYear: 1954,
		ISBN: "978-0544003415", Price: price("24.99"), ImageURL: "/images/books/8.jpg",
		Description: "An epic quest to destroy an all-powerful ring.",
	},
	{
		ID: 9, Title: "Animal Farm", Author: "George Orwell", Genre: "Satire", PublicationYear: 1945,
		ISBN: "978-0452284241", Price: price("7.99"), ImageURL: "/images/books/9.jpg",
		Description: "A satirical allegory about revolution and power.",
	},
	{
		ID: 10, Title: "Brave New World", Author: "Aldous Huxley", Genre: "Dystopian", PublicationYear: 1932,
		ISBN: "978-0060850524", Price: price("10.49"), ImageURL: "/images/books/10.jpg",
		Description: "A futuristic society where humans are engineered.",
	},
	{
		ID: 11, Title: "The Chronicles of Narnia", Author: "C.S. Lewis", Genre: "Fantasy", PublicationYear: 1950,
		ISBN: "978-0066238500", Price: price("19.99"), ImageURL: "/images/books/11.jpg",
		Description: "Children discover a magical world through a wardrobe.",
	},
	{
		ID: 12, Title: "Jane Eyre", Author: "Charlotte Brontë", Genre: "Romance", PublicationYear: 1847,
		ISBN: "978-0141441146", Price: price("8.99"), ImageURL: "/images/books/12.jpg",
		Description: "A governess falls in love with her mysterious employer.",
	},
	{
		ID: 13, Title: "Wuthering Heights", Author: "Emily Brontë", Genre: "Gothic", PublicationYear: 1847,
		ISBN: "978-0141439556", Price: price("8.99"), ImageURL: "/images/books/13.jpg",
		Description: "A passionate and destructive love story on the moors.",
	},
	{
		ID: 14, Title: "Moby-Dick", Author: "Herman Melville", Genre: "Adventure", PublicationYear: 1851,
		ISBN: "978-0142437247", Price: price("11.50"), ImageURL: "/images/books/14.jpg",
		Description: "Captain Ahab's obsessive quest for the white whale.",
	},
	{
		ID: 15, Title: "The Odyssey", Author: "Homer", Genre: "Epic", PublicationYear: -800,
		ISBN: "978-0140268867", Price: price("13.00"), ImageURL: "/images/books/15.jpg",
		Description: "The epic journey of Odysseus returning home from war.",
	},
	{
		ID: 16, Title: "Crime and Punishment", Author: "Fyodor Dostoevsky", Genre: "Philosophical", PublicationYear: 1866,
		ISBN: "978-0486415871", Price: price("6.99"), ImageURL: "/images/books/16.jpg",
		Description: "A psychological exploration of guilt and redemption.",
	},
	{
		ID: 17, Title: "The Brothers Karamazov", Author: "Fyodor Dostoevsky", Genre: "Philosophical", PublicationYear: 1880,
		ISBN: "978-0374528379", Price: price("18.00"), ImageURL: "/images/books/17.jpg",
		Description: "A philosophical novel about faith, doubt, and morality.",
	},
	{
		ID: 18, Title: "War and Peace", Author: "Leo Tolstoy", Genre: "Historical", PublicationYear: 1869,
		ISBN: "978-0199232765", Price: price("16.99"), ImageURL: "/images/books/18.jpg",
		Description: "An epic tale of Russian society during the Napoleonic era.",
	},
	{
		ID: 19, Title: "Anna Karenina", Author: "Leo Tolstoy", Genre: "Romance", PublicationYear: 1877,
		ISBN: "978-0143035008", Price: price("13.99"), ImageURL: "/images/books/19.jpg",
		Description: "A tragic love story in imperial Russia.",
	},
	{
		ID: 20, Title: "The Divine Comedy", Author: "Dante Alighieri", Genre: "Epic", PublicationYear: 1320,
		ISBN: "978-0142437223", Price: price("15.00"), ImageURL: "/images/books/20.jpg",
		Description: "A journey through Hell, Purgatory, and Paradise.",
	},
	{
		ID: 21, Title: "Don Quixote", Author: "Miguel de Cervantes", Genre: "Satire", PublicationYear: 1605,
		ISBN: "978-0060934347", Price: price("14.50"), ImageURL: "/images/books/21.jpg",
		Description: "A knight errant's delusional adventures in Spain.",
	},
	{
		ID: 22, Title: "Les Misérables", Author: "Victor Hugo", Genre: "Historical", PublicationYear: 1862,
		ISBN: "978-0451419439", Price: price("12.50"), ImageURL: "/images/books/22.jpg",
		Description: "A story of redemption and revolution in 19th century France.",
	},
	{
		ID: 23, Title: "The Count of Monte Cristo", Author: "Alexandre Dumas", Genre: "Adventure", PublicationYear: 1844,
		ISBN: "978-0140449266", Price: price("17.99"), ImageURL: "/images/books/23.jpg",
		Description: "A tale of betrayal, imprisonment, and revenge.",
	},
	{
		ID: 24, Title: "Frankenstein", Author: "Mary Shelley", Genre: "Gothic", PublicationYear: 1818,
		ISBN: "978-0486282114", Price: price("5.99"), ImageURL: "/images/books/24.jpg",
		Description: "A scientist creates a living creature with tragic consequences.",
	},
	{
		ID: 25, Title: "Dracula", Author: "Bram Stoker", Genre: "Horror", PublicationYear: 1897,
		ISBN: "978-0486411095", Price: price("6.50"), ImageURL: "/images/books/25.jpg",
		Description: "The classic vampire tale of Count Dracula.",
	},
	{
		ID: 26, Title: "The Picture of Dorian Gray", Author: "Oscar Wilde", Genre: "Gothic", PublicationYear: 1890,
		ISBN: "978-0141439570", Price: price("7.50"), ImageURL: "/images/books/26.jpg",
		Description: "A man remains young while his portrait ages.",
	},
	{
		ID: 27, Title: "Great Expectations", Author: "Charles Dickens", Genre: "Fiction", PublicationYear: 1861,
		ISBN: "978-0141439563", Price: price("9.99"), ImageURL: "/images/books/27.jpg",
		Description: "An orphan's journey from poverty to wealth.",
	},
	{
		ID: 28, Title: "A Tale of Two Cities", Author: "Charles Dickens", Genre: "Historical", PublicationYear: 1859,
		ISBN: "978-0486406510", Price: price("4.99"), ImageURL: "/images/books/28.jpg",
		Description: "Set against the French Revolution, a story of sacrifice.",
	},
	{
		ID: 29, Title: "The Adventures of Sherlock Holmes", Author: "Arthur Conan Doyle", Genre: "Mystery", PublicationYear: 1892,
		ISBN: "978-0486474915", Price: price("8.49"), ImageURL: "/images/books/29.jpg",
		Description: "Classic detective stories featuring Sherlock Holmes.",
	},
	{
		ID: 30, Title: "The Little Prince", Author: "Antoine de Saint-Exupéry", Genre: "Children's", PublicationYear: 1943,
		ISBN: "978-0156012195", Price: price("10.00"), ImageURL: "/images/books/30.jpg",
		Description: "A philosophical tale about a young prince from another planet.",
	},
}
